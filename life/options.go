// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSymmetry is returned when parsing an unknown symmetry mode.
var ErrUnknownSymmetry = errors.New("unknown symmetry")

// ErrUnknownBoundary is returned when parsing an unknown boundary condition.
var ErrUnknownBoundary = errors.New("unknown boundary")

// Symmetry restricts the post states to the ones with some symmetry.
type Symmetry int

const (
	// None means no restriction.
	None Symmetry = iota
	// Mirror restricts the post states to the ones that are symmetric with
	// respect to the vertical axis. Mirrored post cells share one variable.
	Mirror
)

// ParseSymmetry returns the symmetry named s, ignoring case.
func ParseSymmetry(s string) (Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "mirror":
		return Mirror, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownSymmetry, s)
}

func (s Symmetry) String() string {
	switch s {
	case None:
		return "none"
	case Mirror:
		return "mirror"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symmetry) UnmarshalText(text []byte) error {
	v, err := ParseSymmetry(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Set implements flag.Value.
func (s *Symmetry) Set(text string) error {
	return s.UnmarshalText([]byte(text))
}

// Boundary is the condition applied to the pre cells on the border of the
// grid, the ones without a post counterpart.
type Boundary int

const (
	// Free border cells can take any value.
	Free Boundary = iota
	// Dead border cells are always dead.
	Dead
)

// ParseBoundary returns the boundary condition named s, ignoring case.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "":
		return Free, nil
	case "dead":
		return Dead, nil
	}
	return Free, fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
}

func (b Boundary) String() string {
	switch b {
	case Free:
		return "free"
	case Dead:
		return "dead"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	v, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Set implements flag.Value.
func (b *Boundary) Set(text string) error {
	return b.UnmarshalText([]byte(text))
}
