package domain

import (
	interfaces "milsabores/internal/domain/interfaces"
	types "milsabores/internal/domain/types"
)

// DefaultRole is assigned to newly registered users.
const DefaultRole = types.DefaultRole

// Photo statuses re-exported for compact imports.
const (
	PhotoCancelled = types.PhotoCancelled
	PhotoCompleted = types.PhotoCompleted
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username     = types.Username
	PhotoLocator = types.PhotoLocator
	ProductID    = types.ProductID
	User         = types.User
	NewUser      = types.NewUser
	Session      = types.Session
	PhotoStatus  = types.PhotoStatus
	PhotoResult  = types.PhotoResult
	Product      = types.Product
	CartLine     = types.CartLine
	CartItem     = types.CartItem
	CartState    = types.CartState
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	UserStore      = interfaces.UserStore
	Preferences    = interfaces.Preferences
	SessionStore   = interfaces.SessionStore
	PhotoStore     = interfaces.PhotoStore
	CatalogStore   = interfaces.CatalogStore
	CartStore      = interfaces.CartStore
	AuthService    = interfaces.AuthService
	PhotoSource    = interfaces.PhotoSource
	ProfileService = interfaces.ProfileService
	CartService    = interfaces.CartService
)
