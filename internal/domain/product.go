package domain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

const DescriptionPreviewLength = 200

// ProductID accepts both string and numeric identifiers on the wire.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding product id: %w", err)
		}
		*id = ProductID(s)
		return nil
	}

	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("decoding product id: unsupported value %s", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// StringList decodes either a JSON array of strings or a single
// comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding string list: %w", err)
		}
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*l = out
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decoding string list: %w", err)
	}
	*l = items
	return nil
}

type Product struct {
	ID          ProductID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Type        string     `json:"type,omitempty"`
	Effects     StringList `json:"effects,omitempty"`
	Ingredients StringList `json:"ingredients,omitempty"`
}

// HasLongDescription reports whether the description needs an expand toggle.
func (p Product) HasLongDescription() bool {
	return len([]rune(p.Description)) > DescriptionPreviewLength
}

// DescriptionPreview returns the collapsed form of the description: the first
// 200 characters followed by an ellipsis, or the full text when it is short.
func (p Product) DescriptionPreview() string {
	r := []rune(p.Description)
	if len(r) <= DescriptionPreviewLength {
		return p.Description
	}
	return string(r[:DescriptionPreviewLength]) + "..."
}

func (p Product) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}
