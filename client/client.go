// Package client consumes the REST API and hosts the order board
// controller used by front-ends. Local state is only updated after the
// backend acknowledges a mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
)

// ErrSessionExpired signals a 401: the stored token was cleared and the
// caller must log in again before further calls succeed.
var ErrSessionExpired = errors.New("sessão expirada, faça login novamente")

// APIError is a server-reported business error with a message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Logout drops the stored credential.
func (c *Client) Logout() {
	c.SetToken("")
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("falha de conexão: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.Logout()
		return ErrSessionExpired
	}
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("falha de conexão: %w", err)
	}
	contentType := res.Header.Get("Content-Type")
	isJSON := strings.Contains(contentType, "application/json")

	if res.StatusCode >= 300 {
		msg := res.Status
		if isJSON {
			var env envelope
			if json.Unmarshal(raw, &env) == nil && env.Error != "" {
				msg = env.Error
			}
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if !isJSON {
		return fmt.Errorf("resposta inválida do servidor: esperado JSON, recebido %q", contentType)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("resposta inválida do servidor: %w", err)
	}
	return json.Unmarshal(env.Data, out)
}

// ----- Auth -----

type LoginResponse struct {
	Token string `json:"token"`
	Type  string `json:"tipo"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login authenticates and stores the bearer token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"email": email, "senha": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// ----- Customers -----

func (c *Client) Customers(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	err := c.do(ctx, http.MethodGet, "/customers", nil, &out)
	return out, err
}

func (c *Client) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	var out entity.Customer
	err := c.do(ctx, http.MethodPost, "/customers", customer, &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id uint, customer entity.Customer) (entity.Customer, error) {
	var out entity.Customer
	err := c.do(ctx, http.MethodPut, "/customers/"+strconv.Itoa(int(id)), customer, &out)
	return out, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+strconv.Itoa(int(id)), nil, nil)
}

// ----- Menu -----

// Menu lists the cardápio. A nil filter fetches every item, inactive ones
// included; edit forms for historical orders depend on that.
func (c *Client) Menu(ctx context.Context, active *bool) ([]entity.MenuItem, error) {
	path := "/menu"
	if active != nil {
		path += "?active=" + strconv.FormatBool(*active)
	}
	var out []entity.MenuItem
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateMenuItem(ctx context.Context, item entity.MenuItem) (entity.MenuItem, error) {
	var out entity.MenuItem
	err := c.do(ctx, http.MethodPost, "/menu", item, &out)
	return out, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, id uint, item entity.MenuItem) (entity.MenuItem, error) {
	var out entity.MenuItem
	err := c.do(ctx, http.MethodPut, "/menu/"+strconv.Itoa(int(id)), item, &out)
	return out, err
}

func (c *Client) SetMenuItemActive(ctx context.Context, id uint, active bool) (entity.MenuItem, error) {
	var out entity.MenuItem
	body := map[string]bool{"ativo": active}
	err := c.do(ctx, http.MethodPatch, "/menu/"+strconv.Itoa(int(id))+"/active", body, &out)
	return out, err
}

func (c *Client) MenuWhatsAppText(ctx context.Context) (string, error) {
	var out struct {
		Text string `json:"texto"`
	}
	err := c.do(ctx, http.MethodGet, "/menu/whatsapp-text", nil, &out)
	return out.Text, err
}

// ----- Orders -----

func (c *Client) Orders(ctx context.Context, status *entity.Status) ([]entity.Order, error) {
	path := "/orders"
	if status != nil {
		path += "?status=" + string(*status)
	}
	var out []entity.Order
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Order(ctx context.Context, id uint) (entity.Order, error) {
	var out entity.Order
	err := c.do(ctx, http.MethodGet, "/orders/"+strconv.Itoa(int(id)), nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	var out entity.Order
	err := c.do(ctx, http.MethodPost, "/orders", order, &out)
	return out, err
}

// OrderPatch is a partial order update; nil fields are left untouched.
type OrderPatch struct {
	Channel *entity.Channel    `json:"canal,omitempty"`
	Notes   *string            `json:"observacoes,omitempty"`
	Lines   []entity.OrderLine `json:"itens,omitempty"`
}

func (c *Client) UpdateOrder(ctx context.Context, id uint, patch OrderPatch) (entity.Order, error) {
	var out entity.Order
	err := c.do(ctx, http.MethodPut, "/orders/"+strconv.Itoa(int(id)), patch, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status entity.Status) (entity.Order, error) {
	var out entity.Order
	body := map[string]entity.Status{"status": status}
	err := c.do(ctx, http.MethodPatch, "/orders/"+strconv.Itoa(int(id))+"/status", body, &out)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+strconv.Itoa(int(id)), nil, nil)
}
