// This file is part of Pong328.
//
// Pong328 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pong328 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pong328.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlscreen is the windowed frontend. It renders the television
// picture into an SDL window and turns the mouse and keyboard into paddle
// controls.
//
// SDL event servicing must happen on the main goroutine so the frontend is
// split in two: the FieldRenderer half runs on the console goroutine and
// the Service() function is polled from main.
package sdlscreen

import (
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"pong328/curated"
	"pong328/hardware/peripherals"
	"pong328/television"
	"pong328/television/specification"
)

// the console's pixels are much wider than they are tall. stretching each
// one horizontally recovers something close to the 4:3 picture a set would
// show.
const pixelWidth = 4

// Screen is the windowed frontend. It implements the
// television.FieldRenderer interface.
type Screen struct {
	spec specification.Spec

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// one RGBA pixel per console pixel, rebuilt line by line as the field
	// arrives
	pixels []byte

	// paddle control values, eight bit range. written by the event loop,
	// read by the console through the sample function
	leftPaddle  atomic.Int32
	rightPaddle atomic.Int32

	winHeight int32
}

// pixel depth in bytes of the texture format.
const pixelDepth = 4

// NewScreen is the preferred method of initialisation for the Screen type.
// The screen attaches itself to the television.
func NewScreen(tv *television.Television, scale float32) (*Screen, error) {
	if scale <= 0 {
		scale = 1
	}

	scr := &Screen{spec: tv.GetSpec()}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	winWidth := int32(float32(scr.spec.PixelsX*pixelWidth) * scale)
	scr.winHeight = int32(float32(scr.spec.VisibleLines) * scale)

	var err error

	scr.window, err = sdl.CreateWindow("Pong328",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, scr.winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	if err := scr.renderer.SetScale(float32(pixelWidth)*scale, scale); err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(scr.spec.PixelsX), int32(scr.spec.VisibleLines))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.pixels = make([]byte, scr.spec.PixelsX*scr.spec.VisibleLines*pixelDepth)

	scr.leftPaddle.Store(128)
	scr.rightPaddle.Store(128)

	tv.AddFieldRenderer(scr)

	return scr, nil
}

// SampleFunc returns the function the console reads its paddle controls
// through.
func (scr *Screen) SampleFunc() peripherals.SampleFunc {
	return func(channel int) uint8 {
		switch channel {
		case peripherals.ChannelLeftPaddle:
			return uint8(scr.leftPaddle.Load())
		case peripherals.ChannelRightPaddle:
			return uint8(scr.rightPaddle.Load())
		}
		return 128
	}
}

// NewField implements the television.FieldRenderer interface. The field
// just completed is presented to the window.
func (scr *Screen) NewField(field int) error {
	if err := scr.texture.Update(nil, scr.pixels, scr.spec.PixelsX*pixelDepth); err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	scr.renderer.Present()
	return nil
}

// SetScanline implements the television.FieldRenderer interface.
func (scr *Screen) SetScanline(line int, pixels []uint8) error {
	offset := line * scr.spec.PixelsX * pixelDepth
	if offset+scr.spec.PixelsX*pixelDepth > len(scr.pixels) {
		return nil
	}

	for x := 0; x < scr.spec.PixelsX; x++ {
		var v byte
		if pixels[x/8]&(0x80>>(x%8)) != 0 {
			v = 255
		}
		i := offset + x*pixelDepth
		scr.pixels[i] = v
		scr.pixels[i+1] = v
		scr.pixels[i+2] = v
		scr.pixels[i+3] = 255
	}

	return nil
}

// EndRendering implements the television.FieldRenderer interface.
func (scr *Screen) EndRendering() error {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
	return nil
}

// adjustment to a keyboard driven paddle per key press.
const keyStep = 16

// Service polls and handles pending SDL events. It must be called
// frequently from the main goroutine. A request to quit is returned as a
// UserQuit error.
func (scr *Screen) Service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return curated.Errorf(curated.UserQuit)

		case *sdl.MouseMotionEvent:
			// vertical mouse position over the window maps onto the full
			// control range of the right paddle
			v := int32(ev.Y) * 256 / scr.winHeight
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			scr.rightPaddle.Store(v)

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue // event loop
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				return curated.Errorf(curated.UserQuit)
			case sdl.K_a:
				scr.nudge(&scr.leftPaddle, -keyStep)
			case sdl.K_z:
				scr.nudge(&scr.leftPaddle, keyStep)
			}
		}
	}
	return nil
}

func (scr *Screen) nudge(p *atomic.Int32, by int32) {
	v := p.Load() + by
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	p.Store(v)
}
