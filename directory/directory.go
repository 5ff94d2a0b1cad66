// ABOUTME: Doctor directory service with caching and demo fallback
// ABOUTME: Wraps GET /doctors/ for the doctors and home views

package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/doctalk/doctalk-cli/api"
	"github.com/doctalk/doctalk-cli/cache"
	"github.com/doctalk/doctalk-cli/models"
)

const doctorsKey = "doctors:all"

// Directory serves the doctor listing. Results are cached so the home view
// and a following doctors listing don't fetch twice, and an unreachable or
// empty backend is masked by the demo roster when fallback is enabled.
type Directory struct {
	client       *api.Client
	cache        *cache.Cache
	demoFallback bool
}

func New(client *api.Client, ttl time.Duration, demoFallback bool) *Directory {
	return &Directory{
		client:       client,
		cache:        cache.New(ttl),
		demoFallback: demoFallback,
	}
}

// Doctors returns the directory listing. demo is true when the result is the
// canned roster rather than backend data. The error is non-nil only when the
// backend failed and fallback is disabled.
func (d *Directory) Doctors(ctx context.Context) (doctors []models.Doctor, demo bool, err error) {
	if cached, found := d.cache.Get(doctorsKey); found {
		return cached.([]models.Doctor), false, nil
	}

	doctors, err = d.client.ListDoctors(ctx)
	if err != nil {
		if !d.demoFallback {
			return nil, false, err
		}
		slog.Warn("Doctor directory unreachable, using demo roster", "error", err)
		return models.DemoDoctors(), true, nil
	}

	// The seeded backend can legitimately be empty; the original client
	// shows the demo roster in that case too.
	if len(doctors) == 0 && d.demoFallback {
		return models.DemoDoctors(), true, nil
	}

	d.cache.Set(doctorsKey, doctors)
	return doctors, false, nil
}
