package modal

import "errors"

var (
	// ErrDispatchNotInstalled is returned by imperative calls made before a
	// Provider installed its dispatcher.
	ErrDispatchNotInstalled = errors.New("modal: no dispatcher installed; wrap your program with modal.NewProvider (or install an external store) before calling Show, Hide or Remove")

	// ErrNoModalID is returned by UseModal when neither an explicit ref nor
	// an ambient id is available.
	ErrNoModalID = errors.New("modal: no modal id found; pass a ref or call UseModal from a dialog built by a Mounted adapter")

	// ErrNoHandlerProvided is returned by Hold when the handle is nil.
	ErrNoHandlerProvided = errors.New("modal: no handler provided to Hold")

	// ErrNoModalForID is returned by Hold when its ref names no registered
	// component.
	ErrNoModalForID = errors.New("modal: no modal found for id")

	// ErrRejected settles a promise rejected without a reason.
	ErrRejected = errors.New("modal: rejected")

	// ErrRemoved settles promises abandoned by Remove when the manager was
	// built WithRejectOnRemove.
	ErrRemoved = errors.New("modal: removed before settling")
)
