package sqlinline

// Session blobs are opaque JSON supplied by the frontend; the server stores
// and returns them without interpreting the contents.

const QSelectSession = `--sql 3f2c1d84-5a07-4b5e-9c3a-2e8f6b1d9a42
select state
from sessions
where id = $1::text
limit 1;
`

const QUpsertSession = `--sql b7a94c16-8d23-49f0-b1e5-4c7d2a90ef38
insert into sessions (id, state, created_at, updated_at)
values ($1::text, $2::jsonb, now(), now())
on conflict (id) do update set
    state = excluded.state,
    updated_at = now();
`

const QDeleteSession = `--sql 91d3e7f5-2b48-4c6a-8f07-d5e9a1c34b76
delete from sessions
where id = $1::text;
`
