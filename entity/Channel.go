package entity

import "fmt"

// Channel is how an order reached the business.
type Channel string

const (
	ChannelInPerson Channel = "PRESENCIAL"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelPhone    Channel = "TELEFONE"
	ChannelWeb      Channel = "WEB"
)

var channelLabels = map[Channel]string{
	ChannelInPerson: "Presencial",
	ChannelWhatsApp: "WhatsApp",
	ChannelPhone:    "Telefone",
	ChannelWeb:      "Web",
}

func (c Channel) Valid() bool {
	_, ok := channelLabels[c]
	return ok
}

func (c Channel) Label() string {
	return channelLabels[c]
}

func ParseChannel(v string) (Channel, error) {
	c := Channel(v)
	if !c.Valid() {
		return "", fmt.Errorf("invalid channel: %q", v)
	}
	return c, nil
}
