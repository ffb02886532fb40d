// Package siteforge provides a web-design sales workflow service. It scrapes
// a prospect's existing website, asks an LLM provider to analyze the business
// and regenerate the site, and produces outreach collateral (cold email and
// proposal). Generated sites can be published to durable slots and served
// back by identifier.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., firecrawl/, gemini/, sqlite/).
package siteforge
