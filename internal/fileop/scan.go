/*
Copyright The Fileops Authors.
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

package fileop

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// node is a file system entry below a source.
type node struct {
	path string
	// rel is the path relative to the parent directory of the source.
	rel  string
	mode fs.FileMode
	size int64
	info fs.FileInfo
}

// source is a top-level entry of a request with everything below it.
type source struct {
	path  string
	name  string
	nodes []node
	size  int64
}

// scan walks every path concurrently. Sources are returned in the order of
// paths.
func scan(ctx context.Context, paths []string) ([]source, error) {
	sources := make([]source, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			s, err := scanSource(ctx, p)
			if err != nil {
				return err
			}
			sources[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func scanSource(ctx context.Context, path string) (source, error) {
	path = filepath.Clean(path)
	s := source{
		path: path,
		name: filepath.Base(path),
	}
	parent := filepath.Dir(path)
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(parent, p)
		if err != nil {
			return err
		}
		n := node{
			path: p,
			rel:  rel,
			mode: info.Mode(),
			info: info,
		}
		if info.Mode().IsRegular() {
			n.size = info.Size()
			s.size += n.size
		}
		s.nodes = append(s.nodes, n)
		return nil
	})
	if err != nil {
		return source{}, errors.Wrapf(err, "failed to scan %s", path)
	}
	return s, nil
}
