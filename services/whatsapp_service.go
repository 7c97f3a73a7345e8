package services

import (
	"fmt"
	"strings"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
)

// WhatsAppService renders the active cardápio as a WhatsApp-ready message.
type WhatsAppService struct {
	repo *repository.MenuRepository
}

func NewWhatsAppService(repo *repository.MenuRepository) *WhatsAppService {
	return &WhatsAppService{repo: repo}
}

func (s *WhatsAppService) MenuText() (string, error) {
	active := true
	items, err := s.repo.List(&active)
	if err != nil {
		return "", err
	}
	return FormatMenu(items), nil
}

// FormatMenu groups active items by category in the fixed category order.
func FormatMenu(items []entity.MenuItem) string {
	if len(items) == 0 {
		return "Cardápio não disponível no momento."
	}

	byCategory := make(map[entity.Category][]entity.MenuItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	var sb strings.Builder
	sb.WriteString("🍱 *Cardápio da Semana*\n\n")

	for _, category := range entity.Categories {
		group := byCategory[category]
		if len(group) == 0 {
			continue
		}
		sb.WriteString("*" + category.Label() + "*\n")
		for _, item := range group {
			sb.WriteString("• " + item.Name + " - " + FormatPrice(item.Price) + "\n")
			if strings.TrimSpace(item.Description) != "" {
				sb.WriteString("  _" + item.Description + "_\n")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Para pedir, é só responder esta mensagem! 😊")
	return sb.String()
}

// FormatPrice renders a BRL amount the pt-BR way, comma decimal separator.
func FormatPrice(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
