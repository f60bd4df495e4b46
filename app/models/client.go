package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaxModePreTax      = "pre_tax"
	TaxModeTaxIncluded = "tax_included"
)

// Client is a customer relationship that owns a set of serviced facilities.
// The tax rate and default tax mode used for billing previews hang off the
// client, never off individual facilities.
type Client struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UUID               string         `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	Name               string         `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=2,max=200"`
	ContactEmail       string         `gorm:"type:varchar(200);default:null" json:"contact_email" validate:"omitempty,email,max=200"`
	TaxRateBasisPoints int64          `gorm:"not null;default:0" json:"tax_rate_basis_points" validate:"gte=0,lte=10000"`
	DefaultTaxMode     string         `gorm:"type:varchar(20);not null;default:'pre_tax'" json:"default_tax_mode" validate:"oneof=pre_tax tax_included"`
	Active             bool           `gorm:"default:true;index" json:"active"`
	PreviewCount       int64          `gorm:"not null;default:0" json:"preview_count"`
	DeltaCount         int64          `gorm:"not null;default:0" json:"delta_count"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) error {
	if cl.UUID == "" {
		cl.UUID = uuid.New().String()
	}
	return nil
}

func (cl *Client) Validate() error {
	v := validator.New()

	return v.Struct(cl)
}
