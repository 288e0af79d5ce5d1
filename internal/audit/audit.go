package audit

import (
	"context"
	"estate-service/internal/auth"
	"estate-service/internal/domain/activity"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

const recordTimeout = 2 * time.Second

type ActivityStore interface {
	Insert(ctx context.Context, a *activity.Activity) error
}

// Recorder appends activity records for admin mutations. Writes happen in
// the background; a failed append is logged and never fails the request.
type Recorder struct {
	store ActivityStore
}

func NewRecorder(store ActivityStore) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Record(c echo.Context, action activity.Action, entityType activity.Type, description string) {
	record := &activity.Activity{
		Action:      action,
		Description: description,
		Type:        entityType,
		Timestamp:   time.Now(),
	}

	if adminID, err := auth.GetAdminID(c); err == nil {
		record.AdminID = adminID
	}

	output := c.Logger().Output()

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	go func() {
		defer cancel()
		if err := r.store.Insert(ctx, record); err != nil {
			fmt.Fprintf(output, "activity log failed: %v\n", err)
		}
	}()
}
