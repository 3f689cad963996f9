/*Package ansi provides the codec core for ANSI formatted text: the Setting
model for SGR (Select Graphic Rendition) directives, a parser turning
caller-supplied directive tokens into Settings, a lenient decoder that scans
raw text containing ANSI control sequences, and the pure cursor/erase/scroll
control-string generators.

Settings are immutable values. Each one carries the ordered SGR parameter
codes it renders to, plus the attribute category those codes affect, so that
higher layers can resolve conflicting directives per category.

*/
package ansi
