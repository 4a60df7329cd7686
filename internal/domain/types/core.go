package types

// Username identifies a user by the email they registered with.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// PhotoLocator is an opaque reference to a device-local image.
type PhotoLocator string

// String returns the string form of the locator.
func (l PhotoLocator) String() string { return string(l) }

// ProductID identifies a catalog product.
type ProductID string

// String returns the string form of the identifier.
func (id ProductID) String() string { return string(id) }
