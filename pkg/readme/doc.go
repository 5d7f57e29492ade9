// Package readme resolves packages to documentation and writes the result
// into a local output directory.
//
// # Overview
//
// This package is the core pipeline: it takes the package names a scan
// produced, resolves each one to the best documentation the ecosystem
// offers, and stores one markdown file per package. The pieces compose
// left to right:
//
//	scan.Result -> Resolver -> Artifact -> Store -> {outputDir}/{ecosystem}/{name}.md
//
// [Fetcher.FetchAll] drives the whole batch concurrently.
//
// # Resolution Chains
//
// Each ecosystem has a fixed fallback chain, tried in order until a step
// yields usable content:
//
//	python:  PyPI long description -> GitHub README (via project_urls) -> synthesized summary
//	npm:     registry readme -> synthesized description
//
// "Usable" is a length test: a PyPI description must exceed
// [DefaultMinDescription] bytes and an npm readme [DefaultMinReadme],
// otherwise the chain moves on. A chain that reaches the end empty-handed
// reports [ErrNoDocumentation].
//
// # Artifacts
//
// Every successful resolution produces an [Artifact]: content plus the
// metadata (version, source URL, [SourceKind]) that becomes the stored
// file's header. The header lets a reader, human or AI, judge where the
// document came from and how fresh it is.
//
// # Direct Fetches
//
// [FetchURL] bypasses the registries entirely for a caller-supplied URL,
// with GitHub repository URLs resolving through the README branch probe.
// Direct fetches are stored flat under the output directory via
// [Store.WriteNamed].
package readme
