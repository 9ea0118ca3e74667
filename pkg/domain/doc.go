// Package domain contains the core business entities of the breach
// intelligence engine: plan tiers, monitored emails, breach findings and the
// provider lookup cache. The types are free of infrastructure concerns so
// they can be shared across packages.
package domain
