package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	assert.Equal(t, "Welcome to Hotel Lucky", Get("welcome_message", "en"))
	assert.Equal(t, "होटल लकी में आपका स्वागत है", Get("welcome_message", "hi"))
	assert.Equal(t, "हॉटेल लकी मध्ये तुमचे स्वागत आहे", Get("welcome_message", "mr"))

	// unknown language falls back to English
	assert.Equal(t, "Welcome to Hotel Lucky", Get("welcome_message", "fr"))

	// unknown key falls back to the key itself
	assert.Equal(t, "no_such_key", Get("no_such_key", "hi"))
}

func TestTable(t *testing.T) {
	en := Table("en")
	hi := Table("hi")

	// every English key is present in every language table
	assert.Equal(t, len(en), len(hi))
	for key := range en {
		assert.Contains(t, hi, key)
	}
	assert.Equal(t, "रसोई डैशबोर्ड", hi["kitchen_dashboard"])
}

func TestValidLanguage(t *testing.T) {
	assert.True(t, ValidLanguage("en"))
	assert.True(t, ValidLanguage("hi"))
	assert.True(t, ValidLanguage("mr"))
	assert.False(t, ValidLanguage("fr"))
	assert.False(t, ValidLanguage(""))
}
