package parser

import (
	"encoding/json"
	"fmt"

	"github.com/dgallion1/planview/internal/product"
)

// ParseColors decodes product/design-system/colors.json.
func ParseColors(data []byte) (*product.ColorTokens, error) {
	var tokens product.ColorTokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("decode colors.json: %w", err)
	}
	return &tokens, nil
}

// ParseTypography decodes product/design-system/typography.json.
func ParseTypography(data []byte) (*product.TypographyTokens, error) {
	var tokens product.TypographyTokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("decode typography.json: %w", err)
	}
	return &tokens, nil
}
