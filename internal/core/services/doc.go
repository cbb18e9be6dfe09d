// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The dashboard controllers run entirely on a driven.Runtime loop: they
// hold no locks and touch view surfaces only from loop callbacks.
package services
