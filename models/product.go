package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product categories exposed by the public catalog. Anything else is
// rejected before a query is built.
const (
	TypeStickers = "stickers"
	TypeFlavours = "flavours"
	TypeMerch    = "merch"
	TypeFrames   = "frames"
)

var productTypes = map[string]bool{
	TypeStickers: true,
	TypeFlavours: true,
	TypeMerch:    true,
	TypeFrames:   true,
}

func ValidProductType(t string) bool {
	return productTypes[t]
}

type Media struct {
	ID        int       `json:"id"`
	Alt       string    `json:"alt"`
	URL       string    `json:"url"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pricing keeps prices as decimals end to end; the database column is
// NUMERIC and admin request bodies decode into decimals directly.
type Pricing struct {
	Price    decimal.Decimal  `json:"price"`
	OldPrice *decimal.Decimal `json:"oldPrice,omitempty"`
}

// MarshalJSON renders prices as plain JSON numbers. decimal's own
// marshaller quotes them, which storefront clients do not expect.
func (p Pricing) MarshalJSON() ([]byte, error) {
	out := struct {
		Price    float64  `json:"price"`
		OldPrice *float64 `json:"oldPrice,omitempty"`
	}{Price: p.Price.InexactFloat64()}
	if p.OldPrice != nil {
		old := p.OldPrice.InexactFloat64()
		out.OldPrice = &old
	}
	return json.Marshal(out)
}

type CharacteristicValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Characteristic struct {
	Category string                `json:"category"`
	Values   []CharacteristicValue `json:"values"`
}

type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID              int              `json:"id"`
	Type            string           `json:"type"`
	Active          bool             `json:"active"`
	InStock         bool             `json:"inStock"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	MainImage       *Media           `json:"mainImage"`
	Gallery         []Media          `json:"gallery,omitempty"`
	Pricing         Pricing          `json:"pricing"`
	Characteristics []Characteristic `json:"characteristics,omitempty"`
	Description     string           `json:"description,omitempty"`
	SeoText         string           `json:"seoText,omitempty"`
	SEO             SEO              `json:"seo"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
