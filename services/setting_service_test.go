package services

import (
	"testing"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeSetting(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(repository.NewSettingRepository(db), nil)

	// unset → empty URL, no error
	url, err := settings.QRCodeURL()
	require.NoError(t, err)
	assert.Empty(t, url)

	_, err = settings.UpdateQRCode("https://img.example/qr-1.png")
	require.NoError(t, err)

	url, err = settings.QRCodeURL()
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/qr-1.png", url)

	// updating again replaces the row, never appends a second one
	_, err = settings.UpdateQRCode("https://img.example/qr-2.png")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Setting{}).Where("type = ?", entity.SettingQRCode).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	url, err = settings.QRCodeURL()
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/qr-2.png", url)
}
