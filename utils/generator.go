package utils

import (
	"math/rand"
	"time"

	"github.com/mobauto/workshop-backend/models"
	"gorm.io/gorm"
)

const referenceLength = 8
const letterBytes = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateUniqueReference produces the short booking reference customers
// quote over the phone, e.g. "MB-7F3KQ2WD".
func GenerateUniqueReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		reference := "MB-" + string(b)

		var appointment models.Appointment
		err := tx.Where("reference = ?", reference).First(&appointment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return reference, nil
			}
			return "", err
		}
	}
}
