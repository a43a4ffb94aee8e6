// tmdb-rename identifies movie and series folders against TMDB and renames
// them to the canonical "Title (Year) [imdbid-ttXXXXXXX]" form.
package main

func main() {
	Execute()
}
