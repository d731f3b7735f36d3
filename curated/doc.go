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

// Package curated is the error type used throughout the project. Curated
// errors are created with the Errorf() function. The pattern string used in
// the creation of the error is retained and can be tested for with the Is()
// and Has() functions.
//
// Sentinal patterns tested for across package boundaries are declared in this
// package. Patterns local to a single package are declared in the package
// that uses them.
package curated

// Sentinal error patterns tested for across package boundaries.
const (
	// the user has pressed the window close widget or the quit key.
	UserQuit = "user quit"
)
