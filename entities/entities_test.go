package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRepresentations(t *testing.T) {
	assert.Equal(t, "test@test.com", User{Email: "test@test.com"}.String())
	assert.Equal(t, "Vegan", Tag{Name: "Vegan"}.String())
	assert.Equal(t, "Salt", Ingredient{Name: "Salt"}.String())
	assert.Equal(t, "Crab Soup", Recipe{Title: "Crab Soup"}.String())
}
