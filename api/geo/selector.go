package geo

import (
	"context"
	"errors"
	"sync"

	"github.com/ad92co/FKMap/api/models"
)

var ErrPermissionDenied = errors.New("location permission denied")

// searchZoomDelta is the close zoom applied after a successful address
// search recenters the viewport.
const searchZoomDelta = 0.01

// Permissions is the device location-permission collaborator.
type Permissions interface {
	RequestLocation(ctx context.Context) (granted bool, err error)
}

// GrantedPermissions always grants. Used where the server has no device
// permission prompt to delegate to.
type GrantedPermissions struct{}

func (GrantedPermissions) RequestLocation(context.Context) (bool, error) { return true, nil }

// Selector owns the map viewport and the targeting mode in which the
// viewport center, fixed under a crosshair, is the candidate location for
// a new pin.
//
// Address searches are fenced by a sequence number: if a second search is
// issued while the first is in flight, the first result is discarded when
// it arrives instead of overwriting the newer region.
type Selector struct {
	mu         sync.Mutex
	region     models.Region
	targeting  bool
	searchText string
	searchSeq  uint64

	perms    Permissions
	geocoder Geocoder
}

func NewSelector(initial models.Region, perms Permissions, geocoder Geocoder) *Selector {
	return &Selector{region: initial, perms: perms, geocoder: geocoder}
}

func (s *Selector) Region() models.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region
}

// SetRegion tracks viewport changes driven by map interaction.
func (s *Selector) SetRegion(r models.Region) {
	s.mu.Lock()
	s.region = r
	s.mu.Unlock()
}

// SearchText returns the last searched address text; cleared when
// targeting begins.
func (s *Selector) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchText
}

func (s *Selector) Targeting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targeting
}

// StartTargeting enters targeting mode and clears any in-progress search
// text. The caller is expected to dismiss any open detail view.
func (s *Selector) StartTargeting() {
	s.mu.Lock()
	s.targeting = true
	s.searchText = ""
	s.mu.Unlock()
}

// CancelTargeting leaves targeting mode without picking a location.
func (s *Selector) CancelTargeting() {
	s.mu.Lock()
	s.targeting = false
	s.mu.Unlock()
}

// ConfirmTarget captures the viewport center as the candidate pin
// coordinate and exits targeting mode.
func (s *Selector) ConfirmTarget() models.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targeting = false
	return s.region.Center()
}

// SearchAddress resolves text to a coordinate and recenters the viewport
// on the first candidate at close zoom. Empty text is a no-op. Denied
// location permission aborts with ErrPermissionDenied; an empty geocoding
// result yields ErrAddressNotFound.
func (s *Selector) SearchAddress(ctx context.Context, text string) (models.Region, error) {
	if text == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.region, nil
	}

	s.mu.Lock()
	s.searchText = text
	s.searchSeq++
	seq := s.searchSeq
	s.mu.Unlock()

	granted, err := s.perms.RequestLocation(ctx)
	if err != nil {
		return models.Region{}, err
	}
	if !granted {
		return models.Region{}, ErrPermissionDenied
	}

	coords, err := s.geocoder.Forward(ctx, text)
	if err != nil {
		return models.Region{}, err
	}
	if len(coords) == 0 {
		return models.Region{}, ErrAddressNotFound
	}

	target := models.Region{
		Latitude:       coords[0].Latitude,
		Longitude:      coords[0].Longitude,
		LatitudeDelta:  searchZoomDelta,
		LongitudeDelta: searchZoomDelta,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A newer search superseded this one; drop the stale result.
	if seq != s.searchSeq {
		return s.region, nil
	}
	s.region = target
	return s.region, nil
}
