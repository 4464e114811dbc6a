// Package textutil provides small text helpers shared by the store and the
// CLI: turning forest names into safe file stems and presenting species
// names for humans.
package textutil
