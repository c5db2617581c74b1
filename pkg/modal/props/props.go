// Package props maps a modal.Handler onto the prop shapes common dialog
// widgets expect. Each mapping is pure: it reads the handler once and binds
// the callbacks to it.
//
// Widgets differ in two ways: the visibility field is called Visible, Open
// or Show, and the post-close hook is AfterClose, OnExited or a change
// callback receiving the new visibility. Whatever the name, closing calls
// Hide and the post-close hook settles the hide promise and then removes
// the entry unless it is kept mounted.
package props

import "github.com/five82/curtain/pkg/modal"

// VisibleModal is the prop shape of a modal with a Visible flag and
// ok/cancel buttons.
type VisibleModal struct {
	Visible    bool
	OnOk       func() error
	OnCancel   func() error
	AfterClose func() error
}

// OpenModal is VisibleModal with the flag named Open.
type OpenModal struct {
	Open       bool
	OnOk       func() error
	OnCancel   func() error
	AfterClose func() error
}

// VisibleDrawer is the prop shape of a drawer reporting visibility changes
// once its transition ends.
type VisibleDrawer struct {
	Visible            bool
	OnClose            func() error
	AfterVisibleChange func(visible bool) error
}

// OpenDrawer is VisibleDrawer with the flag named Open.
type OpenDrawer struct {
	Open            bool
	OnClose         func() error
	AfterOpenChange func(open bool) error
}

// OpenDialog is the prop shape of a dialog with an exit transition.
type OpenDialog struct {
	Open     bool
	OnClose  func() error
	OnExited func() error
}

// ShowDialog is OpenDialog with the flag named Show and OnHide as the close
// trigger.
type ShowDialog struct {
	Show     bool
	OnHide   func() error
	OnExited func() error
}

// ForVisibleModal maps h onto VisibleModal.
func ForVisibleModal(h *modal.Handler) VisibleModal {
	return VisibleModal{
		Visible:    h.Visible(),
		OnOk:       hide(h),
		OnCancel:   hide(h),
		AfterClose: afterClose(h),
	}
}

// ForOpenModal maps h onto OpenModal.
func ForOpenModal(h *modal.Handler) OpenModal {
	return OpenModal{
		Open:       h.Visible(),
		OnOk:       hide(h),
		OnCancel:   hide(h),
		AfterClose: afterClose(h),
	}
}

// ForVisibleDrawer maps h onto VisibleDrawer.
func ForVisibleDrawer(h *modal.Handler) VisibleDrawer {
	return VisibleDrawer{
		Visible:            h.Visible(),
		OnClose:            hide(h),
		AfterVisibleChange: onClosed(h),
	}
}

// ForOpenDrawer maps h onto OpenDrawer.
func ForOpenDrawer(h *modal.Handler) OpenDrawer {
	return OpenDrawer{
		Open:            h.Visible(),
		OnClose:         hide(h),
		AfterOpenChange: onClosed(h),
	}
}

// ForOpenDialog maps h onto OpenDialog.
func ForOpenDialog(h *modal.Handler) OpenDialog {
	return OpenDialog{
		Open:     h.Visible(),
		OnClose:  hide(h),
		OnExited: afterClose(h),
	}
}

// ForShowDialog maps h onto ShowDialog.
func ForShowDialog(h *modal.Handler) ShowDialog {
	return ShowDialog{
		Show:     h.Visible(),
		OnHide:   hide(h),
		OnExited: afterClose(h),
	}
}

func hide(h *modal.Handler) func() error {
	return func() error {
		_, err := h.Hide()
		return err
	}
}

func afterClose(h *modal.Handler) func() error {
	return func() error {
		h.ResolveHide(nil)
		if h.KeepMounted() {
			return nil
		}
		return h.Remove()
	}
}

// onClosed runs afterClose on the closing edge only.
func onClosed(h *modal.Handler) func(bool) error {
	after := afterClose(h)
	return func(visible bool) error {
		if visible {
			return nil
		}
		return after()
	}
}
