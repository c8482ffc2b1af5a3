package playblast

import (
	"fmt"
	"strings"

	"github.com/user/playblast/pkg/ports"
)

// Path tokens accepted in capture requests.
const (
	ProjectToken = "{project}"
	SceneToken   = "{scene}"
)

// UntitledSceneName substitutes for {scene} when the scene has never
// been saved.
const UntitledSceneName = "untitled"

// ResolveOutputDir substitutes {project} with the host project root.
func ResolveOutputDir(host ports.Host, dir string) (string, error) {
	if !strings.Contains(dir, ProjectToken) {
		return dir, nil
	}
	root, err := host.ProjectRoot()
	if err != nil {
		return "", fmt.Errorf("query project root: %w", err)
	}
	return strings.ReplaceAll(dir, ProjectToken, root), nil
}

// ResolveOutputFilename substitutes {scene} with the current scene's
// base name, falling back to "untitled" for an unsaved scene.
func ResolveOutputFilename(host ports.Host, filename string) (string, error) {
	if !strings.Contains(filename, SceneToken) {
		return filename, nil
	}
	scene, err := host.SceneName()
	if err != nil {
		return "", fmt.Errorf("query scene name: %w", err)
	}
	if scene == "" {
		scene = UntitledSceneName
	}
	return strings.ReplaceAll(filename, SceneToken, scene), nil
}
