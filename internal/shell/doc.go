// Package shell boots the single-page application inside its host document.
//
// Start mounts the root component onto the host anchor element and is the only
// fatal step. Offline worker registration is scheduled for after the host has
// loaded and never reports failure.
package shell
