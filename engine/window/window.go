package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides the native window the planet is drawn into, and the input, resize and
// visibility events the engine listens to.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels (or nil to disable)
	SetResizeCallback(callback func(width, height int))

	// SetMouseMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in window coordinates (or nil to disable)
	SetMouseMoveCallback(callback func(x, y float64))

	// SetVisibilityCallback sets the callback for the window being minimised or restored.
	//
	// Parameters:
	//   - callback: function receiving false when hidden and true when visible again (or nil to disable)
	SetVisibilityCallback(callback func(visible bool))

	// Attribute returns a configuration value attached to the window with WithAttribute.
	//
	// Parameters:
	//   - key: the attribute name
	//
	// Returns:
	//   - string: the value
	//   - bool: whether the attribute is set
	Attribute(key string) (string, bool)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int

	// CursorBounds returns the window size in the coordinate space of cursor positions,
	// which differs from the framebuffer size on high-DPI displays.
	//
	// Returns:
	//   - width, height: window size in screen coordinates
	CursorBounds() (width, height int)
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title      string
	width      int
	height     int
	attributes map[string]string

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	mu           sync.RWMutex
	onUpdate     func()
	onResize     func(width, height int)
	onMouseMove  func(x, y float64)
	onVisibility func(visible bool)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:      "Planet",
		width:      1280,
		height:     720,
		attributes: make(map[string]string),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.mu.Lock()
	w.onUpdate = callback
	w.mu.Unlock()
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.mu.Lock()
	w.onResize = callback
	w.mu.Unlock()
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.mu.Lock()
	w.onMouseMove = callback
	w.mu.Unlock()
}

func (w *engineWindow) SetVisibilityCallback(callback func(visible bool)) {
	w.mu.Lock()
	w.onVisibility = callback
	w.mu.Unlock()
}

func (w *engineWindow) Attribute(key string) (string, bool) {
	v, ok := w.attributes[key]
	return v, ok
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		w.mu.RLock()
		update := w.onUpdate
		w.mu.RUnlock()
		if update != nil {
			update()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) CursorBounds() (width, height int) {
	return platformCursorBounds(w)
}

// dispatch helpers read the callback under the lock and invoke it outside of it, so a
// callback may replace callbacks.

func (w *engineWindow) emitResize(width, height int) {
	w.mu.RLock()
	cb := w.onResize
	w.mu.RUnlock()
	if cb != nil {
		cb(width, height)
	}
}

func (w *engineWindow) emitMouseMove(x, y float64) {
	w.mu.RLock()
	cb := w.onMouseMove
	w.mu.RUnlock()
	if cb != nil {
		cb(x, y)
	}
}

func (w *engineWindow) emitVisibility(visible bool) {
	w.mu.RLock()
	cb := w.onVisibility
	w.mu.RUnlock()
	if cb != nil {
		cb(visible)
	}
}
