// Package donate models the donation panel: two mutually exclusive payment
// sections (PayPal and UPI) that toggle open and closed. It shares no state
// with image generation.
package donate

import "sync"

// HostedButtonID identifies the PayPal hosted donation button.
const HostedButtonID = "4H4D4EEJZQW8N"

// Action is a user interaction with the panel.
type Action string

const (
	ActionPayPal       Action = "paypal"
	ActionUPI          Action = "upi"
	ActionCloseUPI     Action = "close-upi"
	ActionClickOutside Action = "outside"
)

// View is what the page renders.
type View struct {
	PayPalOpen        bool   `json:"paypal_open"`
	UPIOpen           bool   `json:"upi_open"`
	PayPalInitialized bool   `json:"paypal_initialized"`
	HostedButtonID    string `json:"hosted_button_id"`
}

// Panel holds toggle state. At most one section is open.
type Panel struct {
	mu          sync.Mutex
	paypalOpen  bool
	upiOpen     bool
	initialized bool
}

// NewPanel returns a panel with both sections closed.
func NewPanel() *Panel { return &Panel{} }

// TogglePayPal closes UPI and flips PayPal. The hosted button is initialised
// the first time PayPal opens.
func (p *Panel) TogglePayPal() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.upiOpen = false
	p.paypalOpen = !p.paypalOpen
	if p.paypalOpen {
		p.initialized = true
	}
	return p.viewLocked()
}

// ToggleUPI closes PayPal and flips UPI.
func (p *Panel) ToggleUPI() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paypalOpen = false
	p.upiOpen = !p.upiOpen
	return p.viewLocked()
}

// CloseUPI closes the UPI section.
func (p *Panel) CloseUPI() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.upiOpen = false
	return p.viewLocked()
}

// ClickOutside closes both sections.
func (p *Panel) ClickOutside() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paypalOpen = false
	p.upiOpen = false
	return p.viewLocked()
}

// Apply dispatches an action; ok is false for unknown actions.
func (p *Panel) Apply(a Action) (View, bool) {
	switch a {
	case ActionPayPal:
		return p.TogglePayPal(), true
	case ActionUPI:
		return p.ToggleUPI(), true
	case ActionCloseUPI:
		return p.CloseUPI(), true
	case ActionClickOutside:
		return p.ClickOutside(), true
	default:
		return p.View(), false
	}
}

// View returns the current state.
func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

func (p *Panel) viewLocked() View {
	return View{
		PayPalOpen:        p.paypalOpen,
		UPIOpen:           p.upiOpen,
		PayPalInitialized: p.initialized,
		HostedButtonID:    HostedButtonID,
	}
}
