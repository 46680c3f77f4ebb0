/*
Copyright 2025 Supabase, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// prototext is a developer tool for inspecting protobuf text-format input:
// it dumps the lexical token stream and checks inputs for syntax errors.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/multigres/prototext/go/cmd/prototext/command"
)

func main() {
	root := command.GetRootCommand(afero.NewOsFs())
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
