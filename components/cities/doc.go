// Package cities provides a Russian city reference list, fuzzy search
// helpers, and a small net/http handler that returns JSON options for city
// inputs. It also exposes the list as a suggestion source for form sessions.
//
// The default handler responds to GET and HEAD requests and supports query
// and limit parameters. The backing data is loaded from the embedded list
// under data/russian_cities.txt.
package cities
