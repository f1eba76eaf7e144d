package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SaveProductRequest is the admin write-path body for create and update.
// Slug may be left empty; it is derived from the name before the record
// is persisted. Pointer fields distinguish "absent" from zero on PATCH.
type SaveProductRequest struct {
	Type            string           `json:"type"`
	Active          *bool            `json:"active"`
	InStock         *bool            `json:"inStock"`
	Name            string           `json:"name"`
	Slug            *string          `json:"slug"`
	MainImageID     int              `json:"mainImage"`
	GalleryIDs      []int            `json:"gallery"`
	Pricing         *Pricing         `json:"pricing"`
	Characteristics []Characteristic `json:"characteristics"`
	Description     string           `json:"description"`
	SeoText         string           `json:"seoText"`
	SEO             *SEO             `json:"seo"`
}
