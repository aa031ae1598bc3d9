/* Package main: a TRAC T-64 processor

TRAC is a macro language from the days when a string was the most exotic data
structure a terminal user could hope for.  A TRAC program is not parsed ahead
of time--there is no grammar, no syntax tree, no compile step.  The processor
owns a mutable string called the active string, and it eats that string one
character at a time, rewriting it as it goes.  Evaluating a call and editing
the source are the same operation: the value of a call is spliced straight
back into the text being scanned.

Four characters carry all of the syntax.  '#' followed by '(' opens an active
call; '##(' opens a neutral call; ',' separates arguments; ')' closes the
innermost call.  Everything else is just text.  A parenthesized string that
does not follow a '#' is protective: its body is copied through unevaluated,
which is how TRAC quotes.

The difference between '#(' and '##(' is where the value goes.  An active
call's value is pushed back in front of the scan cursor, so the processor
reads it again as input--this is how TRAC does recursion, iteration, and code
generation, all with one mechanism.  A neutral call's value is appended to
the neutral string, inert, as data.

Text that survives scanning accumulates in the neutral string, where open
calls keep track of their argument boundaries.  When a call closes, its name
and arguments are cut back out of the neutral string, the call is dispatched,
and the cycle continues until the active string is empty.

Named strings live in a store of forms.  A form is defined with ds, carved
into segments with ss (which replaces pattern occurrences with numbered
markers), and called back with cl, which fills the markers from arguments.  A
form that shares a name with a primitive wins: user definitions shadow
built-ins, so a program can redefine the processor out from under itself.
Forms also carry a character pointer, so cc, cs, cn, and in can walk a form
piecewise, which is how T-64 programs scan their own data.

The primitives here are the T-64 set: arithmetic on arbitrary-precision
integers, string comparison, Boolean bit-string operations, radix conversion,
form definition and navigation, meta-character control, tracing, and the
read/print bridge (ps, rs, rc) that connects the engine to a character source
and sink.  The block and auxiliary stream primitives of the original manual
(sb, fb, eb, ai, ao, sp, rp) are recognized and answer "N/A".

The scanner is engine.go; forms are forms.go; the primitives are prims.go.
The command line front end in main.go feeds the processor from files, literal
@TEXT arguments, or an interactive line editor.
*/
package main
