// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PluginConflictId Id = iota + 1
	ManifestNotFoundId
	ManifestParseErrorId
	DuplicatePluginNameId
	ConfigLoadFailedId
	InvalidRouteKeyId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	pluginConflictIssue = &Issue{
		id: PluginConflictId,
		mdMsg: `
# Plugin conflict!

Two plugins try to own the same exclusive key (an auth provider,
a permission, an action, or a route). The application cannot start
until exactly one plugin provides it.

## Things you can try:
- Remove or disable one of the conflicting plugins
- Rename the colliding key in the plugin you control:
~~~cue
actions: {
  sendCrmInvite: {description: "Invite a CRM contact"}
}
~~~

- Inspect the full composition to see who owns what:
~~~
$ superapp inspect
~~~`,
	}

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No plugin manifests found!

We searched for plugin.cue manifests but couldn't find any in the
expected locations.

## Search locations (in order of precedence):
1. The project plugins directory (plugins/ by default)
2. ~/.superapp/plugins/
3. Paths configured in your config file

## Things you can try:
- Scaffold a new plugin in your current project:
~~~
$ superapp init my-plugin
~~~

- Or point at a directory that holds plugins:
~~~
$ superapp check path/to/plugins
~~~

## Example plugin manifest:
~~~cue
name:    "blog"
version: "1.0.0"

permissions: {
  "posts.edit": {description: "Edit any post"}
}

routes: {
  "GET /posts": {handler: "listPosts"}
}
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse a plugin manifest!

A plugin.cue file contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- A route without a handler
- Permission, action, or route keys with spaces or bad casing

## Things you can try:
- Check the error message above for the specific line/column
- Validate the manifest directly:
~~~
$ superapp check path/to/plugin
~~~

- Run with verbose mode for more details:
~~~
$ superapp --verbose plugins
~~~`,
	}

	duplicatePluginNameIssue = &Issue{
		id: DuplicatePluginNameId,
		mdMsg: `
# Duplicate plugin name!

Two discovered plugins declare the same name. Composition still works,
but conflict messages can no longer say which of the twins owns a
contested key.

## Things you can try:
- Rename one of the plugins in its manifest:
~~~cue
name: "blog-v2"
~~~

- Remove the stale copy if one of them is an old checkout
- List all discovered plugins with their paths:
~~~
$ superapp plugins
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the superapp configuration file.

## Configuration file locations:
- Linux: ~/.config/superapp/config.cue
- macOS: ~/Library/Application Support/superapp/config.cue
- Windows: %APPDATA%\superapp\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/superapp/config.cue
~~~

## Example configuration:
~~~cue
plugins_dir: "plugins"
search_paths: [
    "/home/user/shared-plugins"
]

ui: {
  color_scheme: "auto"
}
~~~`,
	}

	invalidRouteKeyIssue = &Issue{
		id: InvalidRouteKeyId,
		mdMsg: `
# Invalid route key!

Route keys must be an uppercase HTTP method followed by a path that
starts with a slash, separated by a single space.

## Valid examples:
~~~cue
routes: {
  "GET /posts":        {handler: "listPosts"}
  "POST /posts":       {handler: "createPost"}
  "DELETE /posts/:id": {handler: "deletePost"}
}
~~~

## Things you can try:
- Uppercase the method ("get /x" is rejected)
- Make sure the path begins with "/"`,
	}

	issues = map[Id]*Issue{
		pluginConflictIssue.Id():      pluginConflictIssue,
		manifestNotFoundIssue.Id():    manifestNotFoundIssue,
		manifestParseErrorIssue.Id():  manifestParseErrorIssue,
		duplicatePluginNameIssue.Id(): duplicatePluginNameIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		invalidRouteKeyIssue.Id():     invalidRouteKeyIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
