// Package contract declares the wire shape of ingested match reports.
//
// The types here are deliberately permissive: they mirror whatever an upstream
// source reported and carry no cross-field rules. Decoding never rejects an
// unknown enum token; callers that need closure checks use package ingest.
package contract
