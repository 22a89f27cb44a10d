package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/repositories"
	"github.com/go-playground/validator/v10"
)

// ValidationService checks cart lines and checkout details. Business-rule
// violations come back as a field list; only data access failures are
// returned as errors.
type ValidationService interface {
	ValidateCartLine(ctx context.Context, productID *int64, amount *int) ([]appErrors.FieldError, error)
	ValidateOrder(name, address *string) []appErrors.FieldError
}

type validationService struct {
	productRepo repository.ProductRepository
	validate    *validator.Validate
}

func NewValidationService(productRepo repository.ProductRepository) ValidationService {
	validate := validator.New()

	// report JSON field names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &validationService{productRepo: productRepo, validate: validate}
}

var fieldMessages = map[string]map[string]string{
	"productid": {
		"required": "Product is required and must be an integer",
		"gt":       "Product is required and must be an integer",
	},
	"amount": {
		"required": "Amount is required and must be a number",
		"gt":       "Amount must be a number > 0",
		"lte":      "Amount must be at most 2147483647",
	},
	"name": {
		"required": "Name is required and must be a string",
		"min":      "Name must not be empty",
		"max":      "Name must be at most 128 characters",
	},
	"address": {
		"required": "Address is required and must be a string",
		"min":      "Address must not be empty",
		"max":      "Address must be at most 128 characters",
	},
}

func (s *validationService) ValidateCartLine(ctx context.Context, productID *int64, amount *int) ([]appErrors.FieldError, error) {

	fields := s.fieldErrors(models.AddItemRequest{ProductID: productID, Amount: amount})

	// product existence is only checked for a syntactically valid reference
	if !hasField(fields, "productid") {
		_, err := s.productRepo.GetProductByID(ctx, *productID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}

			productErr := appErrors.FieldError{Field: "productid", Message: fmt.Sprintf("Product \"%d\" does not exist", *productID)}
			fields = append([]appErrors.FieldError{productErr}, fields...)
		}
	}

	return fields, nil
}

func (s *validationService) ValidateOrder(name, address *string) []appErrors.FieldError {
	return s.fieldErrors(models.CheckoutRequest{Name: name, Address: address})
}

func (s *validationService) fieldErrors(v any) []appErrors.FieldError {
	fields := []appErrors.FieldError{}

	err := s.validate.Struct(v)
	if err == nil {
		return fields
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return append(fields, appErrors.FieldError{Field: "body", Message: err.Error()})
	}

	for _, fe := range validationErrs {
		fields = append(fields, appErrors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}

	return fields
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
		return msg
	}

	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}

func hasField(fields []appErrors.FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}

	return false
}
