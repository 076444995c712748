// Package domain contains the core entities of the blogging service
// and their validation rules. Entities here are persistence-agnostic;
// storage concerns live in the store and platform packages.
package domain
