// Package fleet holds the vehicle domain as seen by the client: records,
// brands, list filtering, form validation and chart data derived from
// server statistics.
package fleet

import (
	"carfleet/internal/validation"
)

// Vehicle is a fleet entry as returned by the API.
type Vehicle struct {
	ID          string `json:"id"`
	Name        string `json:"veiculo"`
	Brand       string `json:"marca"`
	Year        int    `json:"ano"`
	Description string `json:"descricao"`
	Color       string `json:"cor"`
	Sold        bool   `json:"vendido"`
	Created     string `json:"created,omitempty"`
	Updated     string `json:"updated,omitempty"`
}

// StatusLabel returns the sold/available label shown in tables and cards.
func (v Vehicle) StatusLabel() string {
	if v.Sold {
		return "Vendido"
	}
	return "Disponível"
}

// ColorLabel returns the color or a dash when none is set.
func (v Vehicle) ColorLabel() string {
	if v.Color == "" {
		return "-"
	}
	return v.Color
}

// Input returns the full payload for editing this vehicle.
func (v Vehicle) Input() VehicleInput {
	return VehicleInput{
		Name:        v.Name,
		Brand:       v.Brand,
		Year:        v.Year,
		Description: v.Description,
		Color:       v.Color,
		Sold:        v.Sold,
	}
}

// VehicleInput is the create/update payload. Validation tags mirror the
// constraints of the form.
type VehicleInput struct {
	Name        string `json:"veiculo" validate:"notblank,max=100"`
	Brand       string `json:"marca" validate:"notblank,max=100"`
	Year        int    `json:"ano" validate:"min=1900,maxyear"`
	Description string `json:"descricao" validate:"notblank,max=1000"`
	Color       string `json:"cor,omitempty" validate:"max=50"`
	Sold        bool   `json:"vendido"`
}

// VehiclePatch is a partial update; nil fields are left untouched.
type VehiclePatch struct {
	Name        *string `json:"veiculo,omitempty"`
	Brand       *string `json:"marca,omitempty"`
	Year        *int    `json:"ano,omitempty"`
	Description *string `json:"descricao,omitempty"`
	Color       *string `json:"cor,omitempty"`
	Sold        *bool   `json:"vendido,omitempty"`
}

// Brand is reference data used to populate the brand selector.
type Brand struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Field identifies a form field; values match the API's json names.
type Field string

const (
	FieldName        Field = "veiculo"
	FieldBrand       Field = "marca"
	FieldYear        Field = "ano"
	FieldDescription Field = "descricao"
	FieldColor       Field = "cor"
)

// FieldErrors maps each offending field to its message.
type FieldErrors map[Field]string

var requiredMessages = map[Field]string{
	FieldName:        "Nome do veículo é obrigatório",
	FieldBrand:       "Marca é obrigatória",
	FieldYear:        "Ano inválido",
	FieldDescription: "Descrição é obrigatória",
}

var tooLongMessages = map[Field]string{
	FieldName:        "Nome do veículo deve ter no máximo 100 caracteres",
	FieldBrand:       "Marca deve ter no máximo 100 caracteres",
	FieldDescription: "Descrição deve ter no máximo 1000 caracteres",
	FieldColor:       "Cor deve ter no máximo 50 caracteres",
}

// Validate checks the input against the form rules. It returns nil when the
// input may be submitted.
func (in VehicleInput) Validate() FieldErrors {
	failed := validation.Fields(in)
	if len(failed) == 0 {
		return nil
	}
	errs := make(FieldErrors, len(failed))
	for name, tag := range failed {
		f := Field(name)
		switch {
		case f == FieldYear:
			errs[f] = requiredMessages[FieldYear]
		case tag == "max":
			errs[f] = tooLongMessages[f]
		default:
			errs[f] = requiredMessages[f]
		}
	}
	return errs
}
