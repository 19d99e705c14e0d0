// Package detect identifies the web framework of a Node.js project from its
// package.json dependencies and framework config files.
package detect

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robertgumeny/authkit/internal/log"
	"github.com/robertgumeny/authkit/internal/types"
)

// ManifestFile is the project manifest read by Detect.
const ManifestFile = "package.json"

// Dependency names that identify each framework.
const (
	payloadDependency = "payload"
	nextDependency    = "next"
)

// Marker config files probed when package.json names neither framework.
var (
	NextConfigFiles    = []string{"next.config.js", "next.config.mjs", "next.config.ts"}
	PayloadConfigFiles = []string{"payload.config.js", "payload.config.ts"}
)

// Result is the outcome of a detection run.
type Result struct {
	Framework types.Framework
	// Reason names the dependency or marker file that decided the result.
	Reason string
}

// Detect returns the framework of the project at projectRoot, or
// types.FrameworkNone. It never fails: an unreadable package.json is
// reported as a warning and treated as undetected.
func Detect(projectRoot string) types.Framework {
	return Report(projectRoot).Framework
}

// Report is Detect with the deciding reason attached. Rules, first match wins:
//   - no package.json                       → none
//   - unreadable or malformed package.json  → none (warning logged)
//   - "payload" in dependencies/devDependencies → Payload CMS
//   - "next" in dependencies/devDependencies    → Next.js
//   - a next.config.* file exists           → Next.js
//   - a payload.config.* file exists        → Payload CMS
//
// Payload is checked before Next.js, so a project depending on both is
// reported as Payload CMS.
func Report(projectRoot string) Result {
	manifestPath := filepath.Join(projectRoot, ManifestFile)
	if _, err := os.Stat(manifestPath); err != nil {
		return Result{Framework: types.FrameworkNone, Reason: "no " + ManifestFile}
	}

	deps, err := readDependencies(manifestPath)
	if err != nil {
		log.Warning(fmt.Sprintf("could not read %s: %v", ManifestFile, err))
		return Result{Framework: types.FrameworkNone, Reason: "unreadable " + ManifestFile}
	}

	if _, ok := deps[payloadDependency]; ok {
		return Result{Framework: types.FrameworkPayload, Reason: "dependency " + payloadDependency}
	}
	if _, ok := deps[nextDependency]; ok {
		return Result{Framework: types.FrameworkNextJS, Reason: "dependency " + nextDependency}
	}
	if name, ok := firstExisting(projectRoot, NextConfigFiles); ok {
		return Result{Framework: types.FrameworkNextJS, Reason: "marker " + name}
	}
	if name, ok := firstExisting(projectRoot, PayloadConfigFiles); ok {
		return Result{Framework: types.FrameworkPayload, Reason: "marker " + name}
	}
	return Result{Framework: types.FrameworkNone, Reason: "no framework dependency or marker file"}
}

// readDependencies returns the union of dependencies and devDependencies.
// Either table may be absent.
func readDependencies(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, version := range pkg.Dependencies {
		merged[name] = version
	}
	for name, version := range pkg.DevDependencies {
		merged[name] = version
	}
	return merged, nil
}

// firstExisting returns the first name in names that exists under dir.
func firstExisting(dir string, names []string) (string, bool) {
	for _, name := range names {
		_, err := os.Stat(filepath.Join(dir, name))
		if err == nil {
			return name, true
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Warning(fmt.Sprintf("could not stat %s: %v", name, err))
		}
	}
	return "", false
}
