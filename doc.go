/*
Package winpath provides Path, a filesystem path value with the usual path
operations attached to it.

A Path is built with New from any string. New normalizes the string with the
platform rules and also records its absolute form, resolved against the
working directory at that moment. Neither ever changes afterwards.

Usage

String-only operations never fail and never touch the disk: Div and Join,
SplitPath, SplitDrive, SplitExt, Basename, Dirname, ExpandUser, ExpandVars,
NormCase, IsAbs and IsRel.

The predicates Exists, IsDir, IsFile, IsSymlink and IsMount look at the live
filesystem through the recorded absolute form and simply report false on any
error. Size, Stat, Times, ReadBytes, ListDir and Realpath return the error the
operating system reported, usually a *FilesystemError carrying the path.

Parent and Dirname are not the same thing: Parent is derived from the absolute
form and is always absolute, Dirname is derived from the normalized form and
stays relative for a relative Path.
*/
package winpath
