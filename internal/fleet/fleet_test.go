package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carfleet/internal/validation"
)

func sampleVehicles() []Vehicle {
	return []Vehicle{
		{ID: "1", Name: "Corolla", Brand: "Toyota", Year: 2020, Color: "Prata", Description: "Sedan"},
		{ID: "2", Name: "Civic", Brand: "Honda", Year: 2021, Color: "Preto", Description: "Sedan", Sold: true},
		{ID: "3", Name: "Hilux", Brand: "Toyota", Year: 2021, Description: "Pickup"},
		{ID: "4", Name: "Gol", Brand: "Volkswagen", Year: 2020, Color: "branco", Description: "Hatch"},
	}
}

func ids(vs []Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestFilter_BrandSubstringCaseInsensitive(t *testing.T) {
	src := []Vehicle{{ID: "t", Brand: "Toyota"}, {ID: "h", Brand: "Honda"}}
	got := Filter(src, Criteria{Brand: "toy"})
	assert.Equal(t, []string{"t"}, ids(got))
}

func TestFilter_YearIsExact(t *testing.T) {
	got := Filter(sampleVehicles(), Criteria{Year: "2020"})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestFilter_UnparsableYearMatchesNothing(t *testing.T) {
	assert.Empty(t, Filter(sampleVehicles(), Criteria{Year: "abc"}))
}

func TestFilter_ColorSkipsVehiclesWithoutColor(t *testing.T) {
	got := Filter(sampleVehicles(), Criteria{Color: "r"})
	// Hilux has no color and must not match.
	assert.Equal(t, []string{"1", "2", "4"}, ids(got))
}

func TestFilter_Conjunction(t *testing.T) {
	got := Filter(sampleVehicles(), Criteria{Brand: "TOYOTA", Year: "2021"})
	assert.Equal(t, []string{"3"}, ids(got))
	got = Filter(sampleVehicles(), Criteria{Name: "co", Brand: "toy", Color: "prata"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_EmptyCriteriaIsFullCopy(t *testing.T) {
	src := sampleVehicles()
	got := Filter(src, Criteria{})
	require.Equal(t, src, got)
	got[0].Name = "changed"
	assert.Equal(t, "Corolla", src[0].Name, "filter result must not alias the source")
}

func TestFilter_ResultIsSubsetSatisfyingCriteria(t *testing.T) {
	src := sampleVehicles()
	criteria := []Criteria{
		{}, {Name: "o"}, {Brand: "a"}, {Year: "2021"}, {Color: "p"},
		{Name: "c", Year: "2020"}, {Brand: "zzz"}, {Name: "o", Brand: "o", Year: "2020", Color: "a"},
	}
	for _, c := range criteria {
		got := Filter(src, c)
		for _, v := range got {
			assert.Contains(t, src, v)
			assert.Equal(t, []Vehicle{v}, Filter([]Vehicle{v}, c), "element %s must satisfy %+v", v.ID, c)
		}
		// Filtering twice changes nothing.
		assert.Equal(t, got, Filter(got, c))
	}
}

func TestCriteria_Query(t *testing.T) {
	q := Criteria{Name: "gol", Year: " 2020", Color: "azul"}.Query()
	assert.Equal(t, "gol", q.Get("veiculo"))
	assert.Equal(t, "2020", q.Get("ano"))
	assert.Equal(t, "azul", q.Get("cor"))
	assert.False(t, q.Has("marca"))
	assert.Empty(t, Criteria{}.Query())
}

func validInput() VehicleInput {
	return VehicleInput{Name: "Gol", Brand: "Volkswagen", Year: 2020, Description: "Compacto", Color: "Branco"}
}

func TestVehicleInput_Validate(t *testing.T) {
	orig := validation.Now
	validation.Now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { validation.Now = orig }()

	tests := []struct {
		name   string
		mutate func(*VehicleInput)
		want   FieldErrors
	}{
		{"valid", func(*VehicleInput) {}, nil},
		{"next year allowed", func(in *VehicleInput) { in.Year = 2026 }, nil},
		{"no color allowed", func(in *VehicleInput) { in.Color = "" }, nil},
		{"blank name", func(in *VehicleInput) { in.Name = "  " }, FieldErrors{FieldName: "Nome do veículo é obrigatório"}},
		{"missing brand", func(in *VehicleInput) { in.Brand = "" }, FieldErrors{FieldBrand: "Marca é obrigatória"}},
		{"missing year", func(in *VehicleInput) { in.Year = 0 }, FieldErrors{FieldYear: "Ano inválido"}},
		{"old year", func(in *VehicleInput) { in.Year = 1899 }, FieldErrors{FieldYear: "Ano inválido"}},
		{"future year", func(in *VehicleInput) { in.Year = 2027 }, FieldErrors{FieldYear: "Ano inválido"}},
		{"blank description", func(in *VehicleInput) { in.Description = "\n" }, FieldErrors{FieldDescription: "Descrição é obrigatória"}},
		{"long color", func(in *VehicleInput) { in.Color = string(make([]byte, 51)) }, FieldErrors{FieldColor: "Cor deve ter no máximo 50 caracteres"}},
		{"everything missing", func(in *VehicleInput) { *in = VehicleInput{} }, FieldErrors{
			FieldName:        "Nome do veículo é obrigatório",
			FieldBrand:       "Marca é obrigatória",
			FieldYear:        "Ano inválido",
			FieldDescription: "Descrição é obrigatória",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			assert.Equal(t, tt.want, in.Validate())
		})
	}
}

func TestVehicle_Labels(t *testing.T) {
	v := Vehicle{Sold: true}
	assert.Equal(t, "Vendido", v.StatusLabel())
	assert.Equal(t, "-", v.ColorLabel())
	v = Vehicle{Color: "Azul"}
	assert.Equal(t, "Disponível", v.StatusLabel())
	assert.Equal(t, "Azul", v.ColorLabel())
}

func TestDecadeBars_SortedByLabel(t *testing.T) {
	bars := DecadeBars(map[string]int{"2010s": 4, "1990s": 2, "2000s": 8})
	require.Len(t, bars, 3)
	assert.Equal(t, "1990s", bars[0].Label)
	assert.Equal(t, "2000s", bars[1].Label)
	assert.Equal(t, "2010s", bars[2].Label)
	assert.InDelta(t, 0.25, bars[0].Ratio, 1e-9)
	assert.InDelta(t, 1.0, bars[1].Ratio, 1e-9)
	assert.InDelta(t, 0.5, bars[2].Ratio, 1e-9)
}

func TestBrandBars_SortedByCountDescending(t *testing.T) {
	bars := BrandBars(map[string]int{"Fiat": 1, "Toyota": 5, "Honda": 5, "Ford": 3})
	labels := make([]string, len(bars))
	for i, b := range bars {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Honda", "Toyota", "Ford", "Fiat"}, labels)
	assert.InDelta(t, 0.2, bars[3].Ratio, 1e-9)
}

func TestBars_Empty(t *testing.T) {
	assert.Nil(t, DecadeBars(nil))
	assert.Nil(t, BrandBars(map[string]int{}))
	bars := BrandBars(map[string]int{"Zero": 0})
	require.Len(t, bars, 1)
	assert.Zero(t, bars[0].Ratio)
}
