package inventory

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/angelmondragon/inventory-service/pkg/db/models"
	"github.com/angelmondragon/inventory-service/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// columnNames maps struct fields to their wire names for error details.
var columnNames = map[string]string{
	"Name":         "name",
	"Quantity":     "quantity",
	"Condition":    "condition",
	"RestockLevel": "restock_level",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, ok := columnNames[f.Name]; ok {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		return enums.Condition(fl.Field().String()).IsValid()
	})
	return v
}

// validateItem checks the persisted invariants of an item.
func validateItem(item *models.InventoryItem) error {
	if item == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid Inventory: no data")
	}
	err := validate.Struct(item)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid Inventory")
	}
	details := map[string]string{}
	for _, fe := range errs {
		details[fe.Field()] = validationMessage(fe)
	}
	first := errs[0]
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Invalid Inventory: %s %s", first.Field(), validationMessage(first))).
		WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "condition":
		return fmt.Sprintf("must be one of %v", enums.Conditions())
	}
	return "is invalid"
}
