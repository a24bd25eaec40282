package routes

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"menuapi/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// productInput is the request body for create and update. Pointer fields
// distinguish "absent" from "zero" so partial updates can merge cleanly.
type productInput struct {
	Name        *string  `json:"product_name" validate:"required,max=255"`
	Description *string  `json:"product_description" validate:"required,max=255"`
	Price       *float64 `json:"product_price" validate:"required,gte=0,lt=1000,decimal2"`
	Category    *string  `json:"product_category" validate:"required,max=100"`
	Type        *string  `json:"product_type" validate:"required,oneof=Veg Non-Veg"`
}

// apply copies the present fields onto the product. Values are copied
// as-is; the merged entity is validated before it reaches storage.
func (in *productInput) apply(p *models.Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
}

// inputFromProduct rebuilds a fully-populated input from a merged product
// so partial updates are validated against the whole entity.
func inputFromProduct(p *models.Product) *productInput {
	return &productInput{
		Name:        &p.Name,
		Description: &p.Description,
		Price:       &p.Price,
		Category:    &p.Category,
		Type:        &p.Type,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the wire field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// At most two fractional digits
	v.RegisterValidation("decimal2", func(fl validator.FieldLevel) bool {
		value := fl.Field().Float()
		return math.Abs(value*100-math.Round(value*100)) < 1e-9
	})

	return v
}

// validationErrors converts validator output into the per-field error map
// returned in 400 bodies.
func validationErrors(err error) map[string][]string {
	out := make(map[string][]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	case "gte":
		return "Ensure this value is greater than or equal to 0."
	case "lt":
		return "Ensure that there are no more than 5 digits in total."
	case "decimal2":
		return "Ensure that there are no more than 2 decimal places."
	default:
		return fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
}
