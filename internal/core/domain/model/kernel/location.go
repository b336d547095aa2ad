package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"carriernet/internal/pkg/errs"
	"carriernet/internal/pkg/guard"
)

// Coordinate represents a position value on the service-area plane.
// Valid coordinates range from LocationMin to LocationMax inclusive.
type Coordinate int16

const (
	// LocationMin is the minimum valid coordinate on either axis.
	LocationMin Coordinate = -500
	// LocationMax is the maximum valid coordinate on either axis.
	LocationMax Coordinate = 500
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation or
// NewRandomLocation to ensure their coordinates were validated.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location represents a point on the service-area plane with validated
// coordinates. It is an immutable value object; the zero value is invalid and
// fails validation.
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates. Both coordinates
// must lie within [LocationMin..LocationMax]; otherwise an out-of-range error
// is returned.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location with random coordinates inside the
// valid bounds. Useful for tests and fixture generation.
func NewRandomLocation() (Location, error) {
	span := int(LocationMax - LocationMin + 1)
	x := Coordinate(rand.IntN(span) + int(LocationMin)) //nolint:gosec // it's ok
	y := Coordinate(rand.IntN(span) + int(LocationMin)) //nolint:gosec // it's ok
	return NewLocation(x, y)
}

// Validate checks that the Location was created through a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer in the form "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations coordinate-wise. Both locations must pass
// validation for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Euclidean distance between two locations, rounded
// to the nearest whole unit. All route distances in the system derive from
// this metric, so revenue and cost tariffs share its units.
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := float64(l.x - other.x)
	dy := float64(l.y - other.y)
	return math.Round(math.Sqrt(dx*dx + dy*dy)), nil
}

// setX sets the x coordinate with validation.
// Pointer receiver is intentional: private setters enable self-encapsulated
// validation during construction while the public API stays value-based.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMin || x > LocationMax {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMin, LocationMax)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < LocationMin || y > LocationMax {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMin, LocationMax)
	}

	l.y = y
	return nil
}
