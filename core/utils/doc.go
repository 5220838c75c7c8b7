// Package utils provides conversion helpers shared by the catalog and
// discovery readers: turning scanned SQL values into catalog cells and feed
// size fields into byte counts.
package utils
