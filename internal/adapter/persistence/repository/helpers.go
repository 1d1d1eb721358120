package repository

import (
	"errors"
	"fmt"
	"time"

	"property_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"gorm.io/gorm"
)

// translateError maps driver-level uniqueness failures to interfaces.ErrConflict.
// The gorm.DB must be opened with TranslateError enabled.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", interfaces.ErrConflict, err)
	}
	return err
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// sortableTimeLayout keeps every fractional digit so stored timestamps sort
// lexically in DynamoDB range keys.
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sortableTimeLayout)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t.UTC()
}

// Migrate creates or updates every relational table owned by the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&propertyRecord{},
		&unitRecord{},
		&tenantRecord{},
		&leaseRecord{},
		&paymentRecord{},
		&gatewayEventRecord{},
	)
}
