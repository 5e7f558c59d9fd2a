package identity

import (
	"testing"

	"better-food-logs/feature/foodlog/models"

	"github.com/stretchr/testify/assert"
)

func base() models.Food {
	return models.Food{
		ID:                 "local-1",
		Name:               "Greek Yogurt",
		BrandName:          "Chobani",
		ServingDescription: "1 container",
		ServingMassG:       models.Float(227),
		Calories:           130,
	}
}

func TestSignature_EqualForSameContent(t *testing.T) {
	a := base()
	b := base()
	b.ID = "remote-9"
	b.Name = "  greek   YOGURT "
	b.BrandName = "chobani"
	b.ServingDescription = "1 Container"
	b.Calories = 999

	assert.Equal(t, Signature(a), Signature(b), "ids and nutrients do not take part")
}

func TestSignature_ChangesWithEachField(t *testing.T) {
	mutations := map[string]func(*models.Food){
		"Name":    func(f *models.Food) { f.Name = "Skyr" },
		"Brand":   func(f *models.Food) { f.BrandName = "Fage" },
		"Serving": func(f *models.Food) { f.ServingDescription = "1 cup" },
		"Mass":    func(f *models.Food) { f.ServingMassG = models.Float(150) },
		"No mass": func(f *models.Food) { f.ServingMassG = nil },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			changed := base()
			mutate(&changed)
			assert.NotEqual(t, Signature(base()), Signature(changed))
		})
	}
}

func TestSignature_FieldsDoNotBleed(t *testing.T) {
	a := models.Food{Name: "Milk", BrandName: "Whole", ServingDescription: "1 cup"}
	b := models.Food{Name: "Milk Whole", ServingDescription: "1 cup"}
	assert.NotEqual(t, Signature(a), Signature(b))
}

func TestSignature_NilMassEqualsZero(t *testing.T) {
	a := base()
	a.ServingMassG = nil
	b := base()
	b.ServingMassG = models.Float(0)
	assert.Equal(t, Signature(a), Signature(b))
}

func TestIndex_FirstWins(t *testing.T) {
	first := base()
	second := base()
	second.ID = "local-2"

	idx := Index([]models.Food{first, second})
	assert.Len(t, idx, 1)
	assert.Equal(t, "local-1", idx[Signature(first)])
}

func TestFind(t *testing.T) {
	remote := base()
	remote.ID = "remote-1"
	other := models.Food{ID: "remote-2", Name: "Banana", ServingDescription: "1 medium"}
	foods := []models.Food{other, remote}

	got, ok := Find(foods, models.Food{ID: "remote-2"})
	assert.True(t, ok)
	assert.Equal(t, "remote-2", got.ID)

	got, ok = Find(foods, base())
	assert.True(t, ok)
	assert.Equal(t, "remote-1", got.ID)

	_, ok = Find(foods, models.Food{ID: "x", Name: "Kiwi"})
	assert.False(t, ok)
}
