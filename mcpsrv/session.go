package mcpsrv

import (
	"sync"

	"github.com/google/uuid"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/controller"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
)

// viewportSetting is a headless viewport whose mode is set by tool calls.
type viewportSetting struct {
	mode types.LayoutMode
}

func (v *viewportSetting) LayoutMode() types.LayoutMode { return v.mode }

// Session serializes tool calls onto a single controller. Reset replaces
// the controller, which is the only way a selection is ever cleared.
type Session struct {
	mu       sync.Mutex
	id       string
	catalog  catalog.Catalog
	viewport *viewportSetting
	ctrl     *controller.Controller
	logger   *zap.Logger
}

// NewSession creates a session over cat with the given initial layout.
func NewSession(cat catalog.Catalog, layout types.LayoutMode, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		catalog:  cat,
		viewport: &viewportSetting{mode: layout},
		logger:   logger,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.id = uuid.NewString()
	sessionLogger := s.logger.With(zap.String("session", s.id))
	s.ctrl = controller.New(s.catalog, s.viewport,
		controller.WithLogger(sessionLogger),
		controller.WithOnChange(func(st controller.State) {
			sessionLogger.Info("state changed",
				zap.Uint64("revision", st.Revision),
				zap.Stringer("screen", st.Screen),
				zap.String("selected", st.Selected.Name()),
			)
		}),
	)
}

// Do runs fn with exclusive access to the controller and returns the
// resulting snapshot together with the session id.
func (s *Session) Do(fn func(c *controller.Controller) error) (controller.State, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fn != nil {
		if err := fn(s.ctrl); err != nil {
			return s.ctrl.State(), s.id, err
		}
	}
	return s.ctrl.State(), s.id, nil
}

// SetLayout changes the headless viewport's layout mode.
func (s *Session) SetLayout(mode types.LayoutMode) (controller.State, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport.mode = mode
	s.logger.Info("layout changed", zap.String("session", s.id), zap.Stringer("layout", mode))
	return s.ctrl.State(), s.id
}

// Reset discards the controller and starts a fresh session.
func (s *Session) Reset() (controller.State, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.ctrl.State(), s.id
}

// Catalog returns the catalog served by the session.
func (s *Session) Catalog() catalog.Catalog { return s.catalog }
