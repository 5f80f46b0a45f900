// Package models defines the persisted entities shared by the sync jobs and
// the listing services.
//
// Every entity embeds Model, which provides the surrogate primary key and the
// created/modified timestamps. Entities that are reconciled against an
// external source (Server, Player, WorkshopItem) expose their stable external
// identifier through ExternalKey, which the reconcile engine uses as the
// correlation key across sync cycles.
package models
