// Package commands contains the business operations that modify delivery
// and fleet state. Implements the command side of the CQRS split: every
// command follows the same pattern of validation, transaction management,
// domain mutation, upstream persistence, and commit.
package commands

import (
	"context"

	"fleetops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The narrowed variants declare exactly which repositories a
// handler touches.
type (
	// TxManager handles store transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations
	// (collection recording and status transitions).
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW manages transactions that span delivery and courier aggregates,
	// such as assignment, which validates the courier and writes the delivery.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
