package impl

import (
	"sync"
	"time"

	"fivestar/internal/domain/entity"
	"fivestar/internal/usecase"

	"github.com/google/uuid"
)

// DefaultToastTTL is how long a toast stays visible. Expiry is anchored to
// each toast's own insertion time.
const DefaultToastTTL = 5 * time.Second

// toastService is the in-memory toast queue. All state is process-local and
// gone after a restart.
type toastService struct {
	mu     sync.Mutex
	ttl    time.Duration
	order  []uuid.UUID
	toasts map[uuid.UUID]entity.Toast
	timers map[uuid.UUID]*time.Timer
}

// NewToastService creates a toast queue with the given TTL. A non-positive
// ttl falls back to the default.
func NewToastService(ttl time.Duration) usecase.ToastUsecase {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}

	return &toastService{
		ttl:    ttl,
		toasts: make(map[uuid.UUID]entity.Toast),
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Push enqueues a toast and schedules its expiry.
func (s *toastService) Push(msg *entity.PushMessage) uuid.UUID {
	toast := entity.Toast{
		ID:        uuid.New(),
		Title:     msg.Title,
		Body:      msg.Body,
		Icon:      msg.Icon,
		Data:      msg.Data,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = append(s.order, toast.ID)
	s.toasts[toast.ID] = toast
	// Each toast expires relative to its own insertion; later pushes never
	// extend it.
	s.timers[toast.ID] = time.AfterFunc(s.ttl, func() {
		s.Remove(toast.ID)
	})

	return toast.ID
}

// Remove dismisses a toast. Unknown or already-expired ids are a no-op.
func (s *toastService) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	delete(s.toasts, id)
}

// Active returns the live toasts in insertion order.
func (s *toastService) Active() []entity.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]entity.Toast, 0, len(s.toasts))
	kept := s.order[:0]
	for _, id := range s.order {
		toast, ok := s.toasts[id]
		if !ok {
			continue
		}
		kept = append(kept, id)
		active = append(active, toast)
	}
	// Compact the order slice so removed ids do not accumulate.
	s.order = kept

	return active
}
