package tween

import (
	"strings"

	"github.com/chewxy/math32"
)

// Ease maps linear progress in [0,1] to eased progress. Ease(0)=0 and Ease(1)=1.
type Ease func(t float32) float32

func Linear(t float32) float32 { return t }

func powerIn(p float32) Ease {
	return func(t float32) float32 { return math32.Pow(t, p) }
}

func powerOut(p float32) Ease {
	return func(t float32) float32 { return 1 - math32.Pow(1-t, p) }
}

func powerInOut(p float32) Ease {
	return func(t float32) float32 {
		if t < 0.5 {
			return math32.Pow(2*t, p) / 2
		}
		return 1 - math32.Pow(2*(1-t), p)/2
	}
}

func SineIn(t float32) float32    { return 1 - math32.Cos(t*math32.Pi/2) }
func SineOut(t float32) float32   { return math32.Sin(t * math32.Pi / 2) }
func SineInOut(t float32) float32 { return -(math32.Cos(math32.Pi*t) - 1) / 2 }

// backOvershoot is the gsap default for back eases.
const backOvershoot = 1.70158

// BackOut overshoots the target slightly before settling.
func BackOut(t float32) float32 {
	c3 := float32(backOvershoot + 1)
	u := t - 1
	return 1 + c3*u*u*u + backOvershoot*u*u
}

// Power eases in gsap numbering: power1 is quadratic, power2 cubic, and so on.
var (
	Power1In    = powerIn(2)
	Power1Out   = powerOut(2)
	Power1InOut = powerInOut(2)
	Power2In    = powerIn(3)
	Power2Out   = powerOut(3)
	Power2InOut = powerInOut(3)
	Power3In    = powerIn(4)
	Power3Out   = powerOut(4)
	Power3InOut = powerInOut(4)
	Power4In    = powerIn(5)
	Power4Out   = powerOut(5)
	Power4InOut = powerInOut(5)
)

var byName = map[string]Ease{
	"none":         Linear,
	"linear":       Linear,
	"power1.in":    Power1In,
	"power1.out":   Power1Out,
	"power1.inout": Power1InOut,
	"power2.in":    Power2In,
	"power2.out":   Power2Out,
	"power2.inout": Power2InOut,
	"power3.in":    Power3In,
	"power3.out":   Power3Out,
	"power3.inout": Power3InOut,
	"power4.in":    Power4In,
	"power4.out":   Power4Out,
	"power4.inout": Power4InOut,
	"sine.in":      SineIn,
	"sine.out":     SineOut,
	"sine.inout":   SineInOut,
	"back.out":     BackOut,
}

// ByName looks up an ease by its gsap-style name ("power2.inOut", "back.out"). Case-insensitive.
func ByName(name string) (Ease, bool) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}
