package httpserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gearstore/internal/domain"
	"github.com/go-playground/validator/v10"
)

type addItemRequest struct {
	ProductID int    `form:"product_id" json:"productId" binding:"required,gt=0"`
	Color     string `form:"color" json:"color" binding:"max=64"`
	Size      string `form:"size" json:"size" binding:"max=64"`
}

func (r addItemRequest) options() domain.VariantOptions {
	return domain.VariantOptions{Color: strings.TrimSpace(r.Color), Size: strings.TrimSpace(r.Size)}
}

type lineRequest struct {
	ProductID int    `form:"product_id" json:"productId" binding:"required,gt=0"`
	Color     string `form:"color" json:"color" binding:"max=64"`
	Size      string `form:"size" json:"size" binding:"max=64"`
}

func (r lineRequest) key() domain.LineKey {
	return domain.LineKey{ProductID: r.ProductID, Color: strings.TrimSpace(r.Color), Size: strings.TrimSpace(r.Size)}
}

type quantityRequest struct {
	ProductID int    `form:"product_id" json:"productId" binding:"required,gt=0"`
	Color     string `form:"color" json:"color" binding:"max=64"`
	Size      string `form:"size" json:"size" binding:"max=64"`
	Quantity  *int   `form:"quantity" json:"quantity" binding:"required,max=999"`
}

func (r quantityRequest) key() domain.LineKey {
	return lineRequest{ProductID: r.ProductID, Color: r.Color, Size: r.Size}.key()
}

type newsletterRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

type contactRequest struct {
	Name    string `form:"name" json:"name" binding:"required,max=200"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Phone   string `form:"phone" json:"phone" binding:"omitempty,max=32"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

func (r contactRequest) values() map[string]string {
	return map[string]string{"name": r.Name, "email": r.Email, "phone": r.Phone, "message": r.Message}
}

// fieldErrors maps validation failures to messages keyed by the request
// field name under tag ("form" or "json"). Errors that are not validation
// failures, such as a malformed number, yield nil.
func fieldErrors(err error, req any, tag string) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if v := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]; v != "" {
				name = v
			}
		}
		out[name] = validationMessage(name, fe)
	}
	return out
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "please enter a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	}
	return field + " is invalid"
}
