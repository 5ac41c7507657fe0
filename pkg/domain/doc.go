// Package domain contains the entities shared by the probes, the reputation
// engine and the storage layer: per-domain and per-address signals, the
// reputation label and the verdict returned to callers. The types carry no
// infrastructure concerns so every layer can depend on them.
package domain
