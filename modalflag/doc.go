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

// Package modalflag handles command line arguments that are divided into
// sub-modes, each sub-mode taking its own set of flags. It is a thin layer
// over the flag package from the standard library.
//
// The idiomatic sequence is: NewArgs() with the command line arguments;
// AddSubModes() with the recognised modes; Parse(); then, depending on the
// selected mode, NewMode(), mode specific flag definitions and a second
// Parse().
package modalflag
