package service

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// newClaimID идентификатор брони. Не секрет, отдаётся всем через
// безопасное чтение.
func newClaimID() string {
	return uuid.NewString()
}

// newClaimToken секрет владения бронью. Предсказуемость токена означает
// обход авторизации, поэтому только crypto/rand.
func newClaimToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на живой системе не отказывает
		panic("generate claim token: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
