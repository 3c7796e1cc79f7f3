package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbecker/resplan/internal/domain"
)

func TestEffortModel_CanonicalHours(t *testing.T) {
	m := DefaultEffortModel()
	assert.Equal(t, 4, m.Hours(domain.SizeXS))
	assert.Equal(t, 8, m.Hours(domain.SizeS))
	assert.Equal(t, 16, m.Hours(domain.SizeM))
	assert.Equal(t, 24, m.Hours(domain.SizeL))
	assert.Equal(t, 32, m.Hours(domain.SizeXL))
}

func TestEffortModel_DefaultCosts(t *testing.T) {
	m := DefaultEffortModel()
	assert.Equal(t, 100.0, m.Cost(domain.SizeXS))
	assert.Equal(t, 800.0, m.Cost(domain.SizeXL))
}

func TestEffortModel_CostOverride(t *testing.T) {
	m := NewEffortModel(map[domain.Size]float64{domain.SizeM: 550})
	assert.Equal(t, 550.0, m.Cost(domain.SizeM))
	assert.Equal(t, 200.0, m.Cost(domain.SizeS), "unoverridden sizes keep defaults")
}

func TestEffortModel_UnknownSizeDegradesToZero(t *testing.T) {
	m := DefaultEffortModel()
	assert.Zero(t, m.Hours(domain.SizeUnspecified))
	assert.Zero(t, m.Cost(domain.SizeUnspecified))
	assert.Zero(t, m.Hours(domain.Size("XXL")))
	assert.Zero(t, m.Cost(domain.Size("XXL")))
}
