// Package profile manages a user's profile photo.
//
// Camera captures and gallery picks are modelled as a PhotoSource that the
// service drains into the photos directory. The outcome is reported as a
// domain.PhotoResult that is either completed, with the new locator, or
// cancelled, in which case the previously stored photo is kept.
package profile
