// Package updater checks GitHub Releases for newer ngforge versions and
// powers the startup banner. The check result is cached for a day so normal
// command runs never block on the network. Binary replacement is not handled
// here; ngforge is distributed through package managers.
package updater
